package ethrpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, results map[string]string, rpcErrs map[string]*RPCError) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr, ok := rpcErrs[req.Method]; ok {
			resp["error"] = rpcErr
		} else if result, ok := results[req.Method]; ok {
			resp["result"] = json.RawMessage(result)
		} else {
			t.Errorf("unexpected method %s", req.Method)
			resp["result"] = json.RawMessage("null")
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestClientReadsChainState(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"eth_chainId":             `"0x279f"`,
		"eth_blockNumber":         `"0x10"`,
		"eth_getTransactionCount": `"0x7"`,
		"eth_gasPrice":            `"0x3b9aca00"`,
	}, nil)
	defer server.Close()

	client, err := NewClient(Config{URL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx := context.Background()

	chainID, err := client.ChainID(ctx)
	if err != nil || chainID != 10143 {
		t.Errorf("ChainID = %d, %v", chainID, err)
	}
	block, err := client.LatestBlockNumber(ctx)
	if err != nil || block != 16 {
		t.Errorf("LatestBlockNumber = %d, %v", block, err)
	}
	nonce, err := client.NonceAt(ctx, "0xAbC0000000000000000000000000000000000001")
	if err != nil || nonce != 7 {
		t.Errorf("NonceAt = %d, %v", nonce, err)
	}
	gasPrice, err := client.GasPrice(ctx)
	if err != nil || gasPrice.Uint64() != 1_000_000_000 {
		t.Errorf("GasPrice = %v, %v", gasPrice, err)
	}
}

func TestSendRawTransaction(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"eth_sendRawTransaction": `"0xdeadbeef"`,
	}, nil)
	defer server.Close()

	client, _ := NewClient(Config{URL: server.URL})
	hash, err := client.SendRawTransaction(context.Background(), []byte{0x01, 0x02})
	if err != nil {
		t.Fatalf("SendRawTransaction: %v", err)
	}
	if hash != "0xdeadbeef" {
		t.Errorf("hash = %q", hash)
	}
}

func TestSendRawTransactionNodeRejection(t *testing.T) {
	server := newTestServer(t, nil, map[string]*RPCError{
		"eth_sendRawTransaction": {Code: -32000, Message: "insufficient funds for gas * price + value"},
	})
	defer server.Close()

	client, _ := NewClient(Config{URL: server.URL})
	_, err := client.SendRawTransaction(context.Background(), []byte{0x01})
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		t.Fatalf("expected *RPCError, got %v", err)
	}
	if rpcErr.Message != "insufficient funds for gas * price + value" {
		t.Errorf("message = %q", rpcErr.Message)
	}
}

func TestTransactionReceiptPending(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"eth_getTransactionReceipt": `null`,
	}, nil)
	defer server.Close()

	client, _ := NewClient(Config{URL: server.URL})
	receipt, err := client.TransactionReceipt(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("TransactionReceipt: %v", err)
	}
	if receipt != nil {
		t.Errorf("expected nil receipt while pending, got %+v", receipt)
	}
}

func TestTransactionReceiptMined(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"eth_getTransactionReceipt": `{
			"transactionHash": "0xabc",
			"blockNumber": "0x2a",
			"blockHash": "0xblockhash",
			"status": "0x1",
			"gasUsed": "0x5208",
			"logs": [{
				"address": "0xCONTRACT",
				"topics": ["0xtopic0", "0xtopic1"],
				"data": "0x00",
				"blockNumber": "0x2a",
				"transactionHash": "0xabc",
				"logIndex": "0x0"
			}]
		}`,
	}, nil)
	defer server.Close()

	client, _ := NewClient(Config{URL: server.URL})
	receipt, err := client.TransactionReceipt(context.Background(), "0xabc")
	if err != nil {
		t.Fatalf("TransactionReceipt: %v", err)
	}
	if receipt == nil {
		t.Fatal("expected receipt")
	}
	if receipt.BlockNumber != 42 || !receipt.Succeeded() || receipt.GasUsed != 21000 {
		t.Errorf("receipt = %+v", receipt)
	}
	if len(receipt.Logs) != 1 || receipt.Logs[0].Address != "0xcontract" {
		t.Errorf("logs = %+v", receipt.Logs)
	}
	if len(receipt.Logs[0].Topics) != 2 {
		t.Errorf("topics = %v", receipt.Logs[0].Topics)
	}
}

func TestCallContract(t *testing.T) {
	server := newTestServer(t, map[string]string{
		"eth_call": `"0x0000000000000000000000000000000000000000000000000000000000000001"`,
	}, nil)
	defer server.Close()

	client, _ := NewClient(Config{URL: server.URL})
	out, err := client.CallContract(context.Background(), "", "0x0000000000000000000000000000000000000002", []byte{0xaa})
	if err != nil {
		t.Fatalf("CallContract: %v", err)
	}
	if len(out) != 32 || out[31] != 1 {
		t.Errorf("out = %x", out)
	}
}

func TestUnreachableNode(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, _ := NewClient(Config{URL: url})
	if _, err := client.LatestBlockNumber(context.Background()); err == nil {
		t.Fatal("expected transport error")
	}
}
