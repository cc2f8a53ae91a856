package collector

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
)

// Receipt is summary of collector response
type Receipt struct {
	StatusCode int
	Reason     string
	Proto      string
	Header     http.Header
}

func newReceipt(res *http.Response) *Receipt {
	reason := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if reason == "" {
		reason = http.StatusText(res.StatusCode)
	}

	return &Receipt{
		StatusCode: res.StatusCode,
		Reason:     reason,
		Proto:      res.Proto,
		Header:     res.Header.Clone(),
	}
}

// Success reports whether collector accepted request (2xx)
func (r *Receipt) Success() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

func (r *Receipt) String() string {
	keys := make([]string, 0, len(r.Header))
	for k := range r.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	hdrs := make([]string, 0, len(keys))
	for _, k := range keys {
		hdrs = append(hdrs, fmt.Sprintf("%s: %s", k, strings.Join(r.Header[k], ", ")))
	}

	return fmt.Sprintf("StatusCode: %d, ReasonPhrase: '%s', Version: %s, Headers: {%s}",
		r.StatusCode, r.Reason, r.Proto, strings.Join(hdrs, "; "))
}
