package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vinh124567/backend-hotel-booking-sub000/config"
)

func testMoMoConfig(endpoint string) config.MoMoConfig {
	return config.MoMoConfig{
		Endpoint:    endpoint,
		PartnerCode: "PARTNER",
		AccessKey:   "access",
		SecretKey:   "secret",
		RedirectURL: "https://example.com/return",
		IPNURL:      "https://example.com/ipn",
	}
}

func hmacHex(secret, raw string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestMoMoCreatePaymentIntentSignsRequest(t *testing.T) {
	var received map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/gateway/api/create" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"resultCode": 0,
			"payUrl":     "https://pay.momo.vn/abc",
			"qrCodeUrl":  "https://qr.momo.vn/abc",
		})
	}))
	defer server.Close()

	client := NewMoMoClient(testMoMoConfig(server.URL))

	intent, err := client.CreatePaymentIntent("ORDER1", "REQ1", 500000, "Thanh toan dat phong #1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.PayURL != "https://pay.momo.vn/abc" {
		t.Fatalf("unexpected pay url %q", intent.PayURL)
	}

	raw := "accessKey=access&amount=500000&extraData=&ipnUrl=https://example.com/ipn" +
		"&orderId=ORDER1&orderInfo=Thanh toan dat phong #1&partnerCode=PARTNER" +
		"&redirectUrl=https://example.com/return&requestId=REQ1&requestType=captureWallet"
	if got := received["signature"]; got != hmacHex("secret", raw) {
		t.Fatalf("signature mismatch: got %v", got)
	}
}

func TestMoMoCreatePaymentIntentGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"resultCode": 41,
			"message":    "duplicate orderId",
		})
	}))
	defer server.Close()

	client := NewMoMoClient(testMoMoConfig(server.URL))

	if _, err := client.CreatePaymentIntent("ORDER1", "REQ1", 500000, "info"); err == nil {
		t.Fatal("expected error on non-zero resultCode")
	}
}

func TestMoMoVerifyIPN(t *testing.T) {
	client := NewMoMoClient(testMoMoConfig("http://unused"))

	ipn := IPNRequest{
		PartnerCode:  "PARTNER",
		OrderID:      "ORDER1",
		RequestID:    "REQ1",
		Amount:       500000,
		OrderInfo:    "Thanh toan dat phong #1",
		OrderType:    "momo_wallet",
		TransID:      123456789,
		ResultCode:   0,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1717000000000,
		ExtraData:    "",
	}

	raw := fmt.Sprintf("accessKey=access&amount=%d&extraData=&message=%s&orderId=%s&orderInfo=%s&orderType=%s&partnerCode=PARTNER&payType=%s&requestId=%s&responseTime=%d&resultCode=%d&transId=%d",
		ipn.Amount, ipn.Message, ipn.OrderID, ipn.OrderInfo, ipn.OrderType,
		ipn.PayType, ipn.RequestID, ipn.ResponseTime, ipn.ResultCode, ipn.TransID)
	ipn.Signature = hmacHex("secret", raw)

	if !client.VerifyIPN(ipn) {
		t.Fatal("expected a correctly signed IPN to verify")
	}

	tampered := ipn
	tampered.Amount = 999999
	if client.VerifyIPN(tampered) {
		t.Fatal("tampered IPN must not verify")
	}
}

func TestMoMoQueryStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/gateway/api/query" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"resultCode": 0})
	}))
	defer server.Close()

	client := NewMoMoClient(testMoMoConfig(server.URL))

	paid, err := client.QueryStatus("ORDER1", "REQ1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !paid {
		t.Fatal("resultCode 0 must report paid")
	}
}
