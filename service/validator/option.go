package validator

type Option func(*Service)

// WithWorkers sets the number of checkpoint evaluation workers
func WithWorkers(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.config.WorkerCount = count
		}
	}
}

// WithConfig sets the whole validator configuration
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}
