package service

import (
	"crypto/rand"
	"math/big"
	"time"
)

const (
	invoicePrefix       = "RelaxArc-"
	invoiceRandomLength = 16
	invoiceAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateInvoiceNumber builds "RelaxArc-" + ddmmyy + 16 random alphanumerics.
func GenerateInvoiceNumber(now time.Time) string {
	b := make([]byte, invoiceRandomLength)
	limit := big.NewInt(int64(len(invoiceAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(err)
		}
		b[i] = invoiceAlphabet[n.Int64()]
	}
	return invoicePrefix + now.Format("020106") + string(b)
}
