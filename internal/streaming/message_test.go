package streaming

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	msg := Message{
		Type:        MessageTypeOutcome,
		ChainID:     10143,
		TraceID:     "4bf92f3577b34da6a3ce929d0e0e4736",
		Domain:      "payment",
		Action:      "create_payment",
		EntityID:    11,
		TxHash:      "0xabc",
		BlockNumber: 100,
		Sender:      "0x00000000000000000000000000000000000000aa",
		Status:      1,
		GasUsed:     52000,
	}

	payload, err := Encode(msg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != msg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, msg)
	}
}

func TestEncodeRejectsMissingFields(t *testing.T) {
	if _, err := Encode(Message{ChainID: 1}); err == nil {
		t.Fatal("expected error for missing type")
	}
	if _, err := Encode(Message{Type: MessageTypeOutcome}); err == nil {
		t.Fatal("expected error for missing chain id")
	}
}

func TestDecodeRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not json", "{"},
		{"missing type", `{"chain_id":1}`},
		{"missing chain id", `{"type":"outcome"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode([]byte(tc.payload)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
