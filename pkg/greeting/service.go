// Package greeting implements a greeting service that speaks whatever
// language its provider speaks.
package greeting

// Service greets through the language provider it was built with.
type Service struct {
	languageProvider Greeter
}

// NewService creates a greeting service backed by languageProvider.
func NewService(languageProvider Greeter) *Service {
	return &Service{
		languageProvider: languageProvider,
	}
}

// Execute returns the provider's greeting unchanged.
func (s *Service) Execute() string {
	return s.languageProvider.Greet()
}
