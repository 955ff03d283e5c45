package reservation

// Money is an amount in whole currency units, matching listing prices.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Times(n int) Money {
	return Money{amount: m.amount * int64(n)}
}
