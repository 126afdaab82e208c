package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Thresholds(t *testing.T) {
	testCases := []struct {
		description       string
		policy            *Policy
		expectExact       float64
		expectApproximate float64
	}{
		{
			description:       "nil policy inherits defaults",
			expectExact:       DefaultExactThreshold,
			expectApproximate: DefaultApproximateThreshold,
		},
		{
			description:       "zero fields inherit defaults",
			policy:            &Policy{},
			expectExact:       DefaultExactThreshold,
			expectApproximate: DefaultApproximateThreshold,
		},
		{
			description:       "partial override",
			policy:            &Policy{ExactThreshold: 1e-6},
			expectExact:       1e-6,
			expectApproximate: DefaultApproximateThreshold,
		},
		{
			description:       "full override",
			policy:            &Policy{ExactThreshold: 1e-8, ApproximateThreshold: 1e-1},
			expectExact:       1e-8,
			expectApproximate: 1e-1,
		},
	}
	for _, testCase := range testCases {
		exact, approximate := testCase.policy.Thresholds()
		assert.Equal(t, testCase.expectExact, exact, testCase.description)
		assert.Equal(t, testCase.expectApproximate, approximate, testCase.description)
	}
}

func TestPolicy_Validate(t *testing.T) {
	var nilPolicy *Policy
	assert.Nil(t, nilPolicy.Validate())
	assert.Nil(t, (&Policy{ExactThreshold: 1e-6}).Validate())
	assert.NotNil(t, (&Policy{ExactThreshold: 1e-1}).Validate())
}

func TestConfig_RoundTrip(t *testing.T) {
	assert.Nil(t, ToConfig(nil))
	assert.Nil(t, FromConfig(nil))

	p := &Policy{ExactThreshold: 1e-8, ApproximateThreshold: 1e-3}
	assert.Equal(t, p, FromConfig(ToConfig(p)))
}

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
	p := &Policy{ExactThreshold: 1e-8}
	ctx := WithContext(context.Background(), p)
	assert.Same(t, p, FromContext(ctx))
}
