package domain

// Certificate represents a certificate stored by the CertificateAuthenticator
// contract. Hash is the lowercase hex SHA-256 of the certificate artifact.
type Certificate struct {
	ID        uint64
	Name      string
	Hash      string
	Timestamp uint64
	Issuer    string
	Valid     bool
}
