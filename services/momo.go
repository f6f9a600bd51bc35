package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Vinh124567/backend-hotel-booking-sub000/config"
)

// PaymentIntent is what the gateway hands back for a created payment.
type PaymentIntent struct {
	PayURL    string
	QRCodeURL string
}

// IPNRequest is the callback body MoMo posts when a payment settles.
type IPNRequest struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      int64  `json:"transId"`
	ResultCode   int    `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature"`
}

// Gateway is the payment collaborator. The production implementation talks
// to MoMo; tests substitute a stub.
type Gateway interface {
	CreatePaymentIntent(orderID, requestID string, amount int64, orderInfo string) (*PaymentIntent, error)
	QueryStatus(orderID, requestID string) (bool, error)
	VerifyIPN(ipn IPNRequest) bool
}

type MoMoClient struct {
	cfg    config.MoMoConfig
	client *http.Client
}

func NewMoMoClient(cfg config.MoMoConfig) *MoMoClient {
	return &MoMoClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (m *MoMoClient) sign(raw string) string {
	mac := hmac.New(sha256.New, []byte(m.cfg.SecretKey))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

type momoCreateResponse struct {
	ResultCode int    `json:"resultCode"`
	Message    string `json:"message"`
	PayURL     string `json:"payUrl"`
	QRCodeURL  string `json:"qrCodeUrl"`
}

// CreatePaymentIntent registers a captureWallet payment with MoMo. The raw
// signature string follows the gateway's fixed field order, not alphabetical
// ordering of whatever we send.
func (m *MoMoClient) CreatePaymentIntent(orderID, requestID string, amount int64, orderInfo string) (*PaymentIntent, error) {
	extraData := ""
	requestType := "captureWallet"

	raw := fmt.Sprintf("accessKey=%s&amount=%d&extraData=%s&ipnUrl=%s&orderId=%s&orderInfo=%s&partnerCode=%s&redirectUrl=%s&requestId=%s&requestType=%s",
		m.cfg.AccessKey, amount, extraData, m.cfg.IPNURL, orderID, orderInfo,
		m.cfg.PartnerCode, m.cfg.RedirectURL, requestID, requestType)

	body := map[string]interface{}{
		"partnerCode": m.cfg.PartnerCode,
		"requestId":   requestID,
		"amount":      amount,
		"orderId":     orderID,
		"orderInfo":   orderInfo,
		"redirectUrl": m.cfg.RedirectURL,
		"ipnUrl":      m.cfg.IPNURL,
		"requestType": requestType,
		"extraData":   extraData,
		"lang":        "vi",
		"signature":   m.sign(raw),
	}

	var resp momoCreateResponse
	if err := m.post("/v2/gateway/api/create", body, &resp); err != nil {
		return nil, err
	}
	if resp.ResultCode != 0 {
		return nil, fmt.Errorf("momo create failed (%d): %s", resp.ResultCode, resp.Message)
	}

	return &PaymentIntent{PayURL: resp.PayURL, QRCodeURL: resp.QRCodeURL}, nil
}

type momoQueryResponse struct {
	ResultCode int    `json:"resultCode"`
	Message    string `json:"message"`
}

// QueryStatus asks the gateway whether the order has been paid.
func (m *MoMoClient) QueryStatus(orderID, requestID string) (bool, error) {
	raw := fmt.Sprintf("accessKey=%s&orderId=%s&partnerCode=%s&requestId=%s",
		m.cfg.AccessKey, orderID, m.cfg.PartnerCode, requestID)

	body := map[string]interface{}{
		"partnerCode": m.cfg.PartnerCode,
		"requestId":   requestID,
		"orderId":     orderID,
		"lang":        "vi",
		"signature":   m.sign(raw),
	}

	var resp momoQueryResponse
	if err := m.post("/v2/gateway/api/query", body, &resp); err != nil {
		return false, err
	}
	return resp.ResultCode == 0, nil
}

// VerifyIPN checks the callback signature against our secret.
func (m *MoMoClient) VerifyIPN(ipn IPNRequest) bool {
	raw := fmt.Sprintf("accessKey=%s&amount=%d&extraData=%s&message=%s&orderId=%s&orderInfo=%s&orderType=%s&partnerCode=%s&payType=%s&requestId=%s&responseTime=%d&resultCode=%d&transId=%d",
		m.cfg.AccessKey, ipn.Amount, ipn.ExtraData, ipn.Message, ipn.OrderID,
		ipn.OrderInfo, ipn.OrderType, ipn.PartnerCode, ipn.PayType,
		ipn.RequestID, ipn.ResponseTime, ipn.ResultCode, ipn.TransID)

	expected := m.sign(raw)
	return hmac.Equal([]byte(expected), []byte(ipn.Signature))
}

func (m *MoMoClient) post(path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := m.client.Post(m.cfg.Endpoint+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}
