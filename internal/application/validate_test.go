package application

import (
	"math/big"
	"strings"
	"testing"

	"orgnet/internal/domain"
)

func TestValidateAddress(t *testing.T) {
	valid := []string{
		"0x00000000000000000000000000000000000000aa",
		"0xABCDEF0123456789abcdef0123456789ABCDEF01",
	}
	for _, addr := range valid {
		if err := validateAddress(addr); err != nil {
			t.Errorf("validateAddress(%q) = %v, want nil", addr, err)
		}
	}

	invalid := []string{
		"",
		"0x",
		"00000000000000000000000000000000000000aa",
		"0x00000000000000000000000000000000000000a",
		"0x00000000000000000000000000000000000000aaa",
		"0x00000000000000000000000000000000000000ag",
		"1x00000000000000000000000000000000000000aa",
	}
	for _, addr := range invalid {
		err := validateAddress(addr)
		if domain.KindOf(err) != domain.ErrValidation {
			t.Errorf("validateAddress(%q) kind = %q, want %q", addr, domain.KindOf(err), domain.ErrValidation)
		}
	}
}

func TestParseDate(t *testing.T) {
	ts, err := parseDate("2026-02-05")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if ts != 1770249600 {
		t.Fatalf("ts = %d, want 1770249600", ts)
	}

	for _, bad := range []string{"", "05-02-2026", "2026-13-01", "2026-02-05 10:00:00", "next friday"} {
		if _, err := parseDate(bad); domain.KindOf(err) != domain.ErrValidation {
			t.Errorf("parseDate(%q) kind = %q, want %q", bad, domain.KindOf(err), domain.ErrValidation)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	ts, err := parseDateTime("2026-02-05 13:30:00")
	if err != nil {
		t.Fatalf("parseDateTime: %v", err)
	}
	if ts != 1770298200 {
		t.Fatalf("ts = %d, want 1770298200", ts)
	}

	for _, bad := range []string{"", "2026-02-05", "2026-02-05T13:30:00", "13:30:00"} {
		if _, err := parseDateTime(bad); domain.KindOf(err) != domain.ErrValidation {
			t.Errorf("parseDateTime(%q) kind = %q, want %q", bad, domain.KindOf(err), domain.ErrValidation)
		}
	}
}

func TestStatusIndex(t *testing.T) {
	cases := []struct {
		value string
		want  uint8
	}{
		{"Pending", 0},
		{"in progress", 1},
		{"COMPLETED", 2},
		{" Cancelled ", 3},
		{"0", 0},
		{"3", 3},
	}
	for _, tc := range cases {
		got, err := statusIndex(domain.TaskStatuses, tc.value)
		if err != nil {
			t.Errorf("statusIndex(%q): %v", tc.value, err)
			continue
		}
		if got != tc.want {
			t.Errorf("statusIndex(%q) = %d, want %d", tc.value, got, tc.want)
		}
	}

	for _, bad := range []string{"", "Done", "4", "-1", "1.5"} {
		if _, err := statusIndex(domain.TaskStatuses, bad); domain.KindOf(err) != domain.ErrValidation {
			t.Errorf("statusIndex(%q) kind = %q, want %q", bad, domain.KindOf(err), domain.ErrValidation)
		}
	}
}

func TestValidateCategory(t *testing.T) {
	got, err := validateCategory("  HR_Team ")
	if err != nil {
		t.Fatalf("validateCategory: %v", err)
	}
	if got != "hr_team" {
		t.Fatalf("category = %q, want %q", got, "hr_team")
	}

	if _, err := validateCategory("board_members"); domain.KindOf(err) != domain.ErrValidation {
		t.Fatalf("kind = %q, want %q", domain.KindOf(err), domain.ErrValidation)
	}
}

func TestValidateLeaveType(t *testing.T) {
	for _, lt := range domain.LeaveTypes {
		if err := validateLeaveType(lt); err != nil {
			t.Errorf("validateLeaveType(%q) = %v, want nil", lt, err)
		}
	}
	// Exact match only, the contract stores the canonical spelling.
	for _, bad := range []string{"annual", "SICK", "Vacation", ""} {
		if err := validateLeaveType(bad); domain.KindOf(err) != domain.ErrValidation {
			t.Errorf("validateLeaveType(%q) kind = %q, want %q", bad, domain.KindOf(err), domain.ErrValidation)
		}
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("1000000000000000000")
	if err != nil {
		t.Fatalf("parseAmount: %v", err)
	}
	want, _ := new(big.Int).SetString("1000000000000000000", 10)
	if amount.Cmp(want) != 0 {
		t.Fatalf("amount = %s, want %s", amount, want)
	}

	huge := strings.Repeat("9", 40)
	if _, err := parseAmount(huge); err != nil {
		t.Fatalf("parseAmount(%q): %v, want nil for amounts beyond uint64", huge, err)
	}

	for _, bad := range []string{"", "0", "-1", "1.5", "1e18", "five"} {
		if _, err := parseAmount(bad); domain.KindOf(err) != domain.ErrValidation {
			t.Errorf("parseAmount(%q) kind = %q, want %q", bad, domain.KindOf(err), domain.ErrValidation)
		}
	}
}
