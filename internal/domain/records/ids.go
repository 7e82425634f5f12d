package records

import (
	"strings"

	"github.com/google/uuid"
)

const (
	IDPrefixWashEvent           = "we"
	IDPrefixExpense             = "exp"
	IDPrefixEmployee            = "emp"
	IDPrefixScheme              = "scheme"
	IDPrefixClient              = "client"
	IDPrefixClientTransaction   = "client_txn"
	IDPrefixEmployeeTransaction = "txn"
)

func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
