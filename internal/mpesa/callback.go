package mpesa

import (
	"fmt"
	"strconv"
	"time"
)

// CallbackPayload is the payload the gateway posts to the callback endpoint.
type CallbackPayload struct {
	Body struct {
		StkCallback StkCallback `json:"stkCallback"`
	} `json:"Body"`
}

// StkCallback carries the result of an STK push prompt.
type StkCallback struct {
	MerchantRequestID string            `json:"MerchantRequestID"`
	CheckoutRequestID string            `json:"CheckoutRequestID"`
	ResultCode        int               `json:"ResultCode"`
	ResultDesc        string            `json:"ResultDesc"`
	CallbackMetadata  *CallbackMetadata `json:"CallbackMetadata,omitempty"`
}

// CallbackMetadata is present only on successful payments.
type CallbackMetadata struct {
	Item []MetadataItem `json:"Item"`
}

// MetadataItem is a name/value pair; values are numbers or strings
// depending on the field.
type MetadataItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value,omitempty"`
}

// Succeeded reports whether the payment completed.
func (c *StkCallback) Succeeded() bool {
	return c.ResultCode == ResultCodeSuccess
}

func (c *StkCallback) metadataValue(name string) (any, bool) {
	if c.CallbackMetadata == nil {
		return nil, false
	}
	for _, item := range c.CallbackMetadata.Item {
		if item.Name == name {
			return item.Value, true
		}
	}
	return nil, false
}

// Amount returns the paid amount from the callback metadata.
func (c *StkCallback) Amount() (float64, bool) {
	v, ok := c.metadataValue("Amount")
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	}
	return 0, false
}

// ReceiptNumber returns the gateway receipt number from the callback metadata.
func (c *StkCallback) ReceiptNumber() (string, bool) {
	v, ok := c.metadataValue("MpesaReceiptNumber")
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// TransactionDate returns the gateway-reported transaction time.
// The gateway sends it as a numeric YYYYMMDDHHMMSS value.
func (c *StkCallback) TransactionDate() (time.Time, bool) {
	v, ok := c.metadataValue("TransactionDate")
	if !ok {
		return time.Time{}, false
	}

	var raw string
	switch val := v.(type) {
	case float64:
		raw = strconv.FormatInt(int64(val), 10)
	case string:
		raw = val
	default:
		return time.Time{}, false
	}

	t, err := time.Parse(timestampLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CourseID extracts a course reference from the callback payload.
// The gateway never sends one today, so this always reports absent;
// the hook exists because the account reference may carry one in future.
func (c *StkCallback) CourseID() (int64, bool) {
	v, ok := c.metadataValue("CourseID")
	if !ok {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return int64(val), true
	case string:
		id, err := strconv.ParseInt(val, 10, 64)
		return id, err == nil
	}
	return 0, false
}

// String implements fmt.Stringer for log lines.
func (c *StkCallback) String() string {
	return fmt.Sprintf("stkCallback{checkout=%s result=%d desc=%q}", c.CheckoutRequestID, c.ResultCode, c.ResultDesc)
}
