package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"os"
	"strings"

	"orgnet/internal/contract"
	"orgnet/internal/domain"
)

// HashArtifact computes the lowercase hex SHA-256 of a certificate artifact
// file, the form stored on chain.
func HashArtifact(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", domain.WrapError(domain.ErrValidation, "reading certificate artifact", err)
	}
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:]), nil
}

// IssueCertificate submits an issueCertificate call for a precomputed hash and
// returns the confirmed outcome with the identifier from CertificateIssued.
func (s *Services) IssueCertificate(ctx context.Context, name, certificateHash string) (domain.Outcome, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Outcome{}, domain.Errorf(domain.ErrValidation, "certificate name cannot be empty")
	}
	hash := strings.ToLower(strings.TrimSpace(certificateHash))
	if hash == "" {
		return domain.Outcome{}, domain.Errorf(domain.ErrValidation, "certificate hash cannot be empty")
	}

	data, err := contract.CertificateAuthenticator.Pack("issueCertificate", name, hash)
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding issueCertificate", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Certificate,
		Function: "issueCertificate",
		Data:     data,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	certID := contract.CertificateAuthenticator.ExtractEventID(receipt.Logs, "CertificateIssued", "certificateId")
	outcome := s.outcome(domain.DomainCertificate, "issue_certificate", certID, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// IssueCertificateFile hashes an artifact file and issues a certificate for
// it. The computed hash is returned so callers can report it.
func (s *Services) IssueCertificateFile(ctx context.Context, name, path string) (domain.Outcome, string, error) {
	hash, err := HashArtifact(path)
	if err != nil {
		return domain.Outcome{}, "", err
	}
	outcome, err := s.IssueCertificate(ctx, name, hash)
	return outcome, hash, err
}

// RevokeCertificate submits a revokeCertificate call.
func (s *Services) RevokeCertificate(ctx context.Context, certificateID uint64) (domain.Outcome, error) {
	data, err := contract.CertificateAuthenticator.Pack("revokeCertificate", new(big.Int).SetUint64(certificateID))
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding revokeCertificate", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Certificate,
		Function: "revokeCertificate",
		Data:     data,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	outcome := s.outcome(domain.DomainCertificate, "revoke_certificate", certificateID, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// VerifyCertificate checks whether a hash belongs to a valid certificate.
func (s *Services) VerifyCertificate(ctx context.Context, certificateHash string) (bool, error) {
	hash := strings.ToLower(strings.TrimSpace(certificateHash))
	if hash == "" {
		return false, domain.Errorf(domain.ErrValidation, "certificate hash cannot be empty")
	}
	data, err := contract.CertificateAuthenticator.Pack("verifyCertificate", hash)
	if err != nil {
		return false, domain.WrapError(domain.ErrValidation, "encoding verifyCertificate", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Certificate, data)
	if err != nil {
		return false, err
	}
	valid, err := contract.DecodeVerification(out)
	if err != nil {
		return false, domain.WrapError(domain.ErrDecoding, "decoding verifyCertificate result", err)
	}
	return valid, nil
}

// VerifyCertificateFile hashes an artifact file and verifies it on chain. The
// computed hash is returned so callers can report it.
func (s *Services) VerifyCertificateFile(ctx context.Context, path string) (bool, string, error) {
	hash, err := HashArtifact(path)
	if err != nil {
		return false, "", err
	}
	valid, err := s.VerifyCertificate(ctx, hash)
	return valid, hash, err
}

// GetCertificate reads one certificate by id.
func (s *Services) GetCertificate(ctx context.Context, certificateID uint64) (domain.Certificate, error) {
	data, err := contract.CertificateAuthenticator.Pack("getCertificate", new(big.Int).SetUint64(certificateID))
	if err != nil {
		return domain.Certificate{}, domain.WrapError(domain.ErrValidation, "encoding getCertificate", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Certificate, data)
	if err != nil {
		return domain.Certificate{}, err
	}
	cert, err := contract.DecodeCertificate(out)
	if err != nil {
		return domain.Certificate{}, domain.WrapError(domain.ErrDecoding, "decoding getCertificate result", err)
	}
	return cert, nil
}

// MyCertificates reads every certificate issued by the sender.
func (s *Services) MyCertificates(ctx context.Context) ([]domain.Certificate, error) {
	data, err := contract.CertificateAuthenticator.Pack("getMyCertificates")
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, "encoding getMyCertificates", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Certificate, data)
	if err != nil {
		return nil, err
	}
	certs, err := contract.DecodeCertificateList(out)
	if err != nil {
		return nil, domain.WrapError(domain.ErrDecoding, "decoding getMyCertificates result", err)
	}
	return certs, nil
}
