package contract

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"orgnet/internal/domain"
)

// Binding wraps a parsed contract ABI and exposes calldata packing and event
// log extraction for one deployed contract.
type Binding struct {
	name string
	abi  abi.ABI
}

// Bindings for the five deployed contracts.
var (
	TaskTracker              = newBinding("TaskTracker", taskTrackerABI)
	NoticeManager            = newBinding("NoticeManager", noticeManagerABI)
	CertificateAuthenticator = newBinding("CertificateAuthenticator", certificateAuthenticatorABI)
	LeaveManagement          = newBinding("LeaveManagement", leaveManagementABI)
	EmployeePayment          = newBinding("EmployeePayment", employeePaymentABI)
)

func newBinding(name, abiJSON string) *Binding {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		panic(fmt.Errorf("contract: parsing %s ABI: %w", name, err))
	}
	return &Binding{name: name, abi: parsed}
}

// Name returns the contract name the binding was built for.
func (b *Binding) Name() string {
	return b.name
}

// Pack encodes a method call into calldata. Arguments must already carry the
// Go types the ABI expects (*big.Int for uint256, common.Address for address).
func (b *Binding) Pack(method string, args ...interface{}) ([]byte, error) {
	data, err := b.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("contract: packing %s.%s: %w", b.name, method, err)
	}
	return data, nil
}

// EventID returns the topic hash identifying the named event.
func (b *Binding) EventID(event string) (common.Hash, bool) {
	ev, ok := b.abi.Events[event]
	if !ok {
		return common.Hash{}, false
	}
	return ev.ID, true
}

// ExtractEventID scans receipt logs for the first emission of the named event
// and returns the value of one of its uint256 fields. Indexed fields are read
// from the log topics, the rest are decoded from the data section. A missing
// event, missing field, or undecodable log yields 0: callers treat the
// identifier as informational and never fail a confirmed transaction over it.
func (b *Binding) ExtractEventID(logs []domain.LogEntry, event, field string) uint64 {
	ev, ok := b.abi.Events[event]
	if !ok {
		return 0
	}
	want := strings.ToLower(ev.ID.Hex())
	for _, entry := range logs {
		if len(entry.Topics) == 0 || strings.ToLower(entry.Topics[0]) != want {
			continue
		}
		topicIdx := 1
		for _, input := range ev.Inputs {
			if !input.Indexed {
				continue
			}
			if input.Name == field {
				if topicIdx >= len(entry.Topics) {
					return 0
				}
				return new(big.Int).SetBytes(common.HexToHash(entry.Topics[topicIdx]).Bytes()).Uint64()
			}
			topicIdx++
		}
		return b.extractFromData(ev, entry.Data, field)
	}
	return 0
}

func (b *Binding) extractFromData(ev abi.Event, data, field string) uint64 {
	raw, err := hexutil.Decode(data)
	if err != nil {
		return 0
	}
	values, err := ev.Inputs.NonIndexed().UnpackValues(raw)
	if err != nil {
		return 0
	}
	position := 0
	for _, input := range ev.Inputs {
		if input.Indexed {
			continue
		}
		if input.Name == field {
			if position >= len(values) {
				return 0
			}
			if v, ok := values[position].(*big.Int); ok {
				return v.Uint64()
			}
			return 0
		}
		position++
	}
	return 0
}
