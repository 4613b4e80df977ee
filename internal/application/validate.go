package application

import (
	"math/big"
	"regexp"
	"strings"
	"time"

	"orgnet/internal/domain"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

func validateAddress(address string) error {
	if !addressPattern.MatchString(address) {
		return domain.Errorf(domain.ErrValidation,
			"invalid address %q: must start with 0x followed by 40 hex characters", address)
	}
	return nil
}

// parseDate converts a YYYY-MM-DD value to a Unix timestamp at midnight UTC.
func parseDate(value string) (uint64, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, domain.Errorf(domain.ErrValidation, "invalid date %q: use YYYY-MM-DD", value)
	}
	return uint64(t.Unix()), nil
}

// parseDateTime converts a YYYY-MM-DD HH:MM:SS value to a Unix timestamp.
func parseDateTime(value string) (uint64, error) {
	t, err := time.Parse(dateTimeLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, domain.Errorf(domain.ErrValidation, "invalid deadline %q: use YYYY-MM-DD HH:MM:SS", value)
	}
	return uint64(t.Unix()), nil
}

// statusIndex resolves a status given either by name or by numeric index.
func statusIndex(names []string, value string) (uint8, error) {
	trimmed := strings.TrimSpace(value)
	for i, name := range names {
		if strings.EqualFold(name, trimmed) {
			return uint8(i), nil
		}
	}
	if n, ok := new(big.Int).SetString(trimmed, 10); ok && n.IsUint64() && n.Uint64() < uint64(len(names)) {
		return uint8(n.Uint64()), nil
	}
	return 0, domain.Errorf(domain.ErrValidation,
		"invalid status %q: must be one of %s", value, strings.Join(names, ", "))
}

func validateCategory(category string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(category))
	for _, valid := range domain.NoticeCategories {
		if normalized == valid {
			return normalized, nil
		}
	}
	return "", domain.Errorf(domain.ErrValidation,
		"invalid category %q: must be one of %s", category, strings.Join(domain.NoticeCategories, ", "))
}

func validateLeaveType(leaveType string) error {
	for _, valid := range domain.LeaveTypes {
		if leaveType == valid {
			return nil
		}
	}
	return domain.Errorf(domain.ErrValidation,
		"invalid leave type %q: must be one of %s", leaveType, strings.Join(domain.LeaveTypes, ", "))
}

// parseAmount validates a positive integer wei amount.
func parseAmount(value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok {
		return nil, domain.Errorf(domain.ErrValidation, "invalid amount %q: must be a whole number of wei", value)
	}
	if amount.Sign() <= 0 {
		return nil, domain.Errorf(domain.ErrValidation, "invalid amount %q: must be positive", value)
	}
	return amount, nil
}
