package domain

// MissingCredentialError signals that a provider's API key is absent from the environment.
type MissingCredentialError struct {
	EnvVar string
}

func (e *MissingCredentialError) Error() string {
	return e.EnvVar + " not set"
}
