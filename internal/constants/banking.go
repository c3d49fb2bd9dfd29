package constants

// Banknotes lists the available denominations in ascending order.
var Banknotes = []int64{2, 5, 10, 20, 50, 100}

const (
	DefaultMaxOptions  = 3
	DefaultAgency      = "0001"
	DefaultCurrency    = "BRL"
	IdentifierLen      = 11
	AccountNumberWidth = 6
	MaxAccountNumber   = 999999
	MoneyPlaces        = 2
)

const (
	OpAdd = "add"
	OpSub = "sub"
	OpMul = "mul"
)
