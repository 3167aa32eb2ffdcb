package protocols

type Metrics interface {
	ObserveOperation(operation string, err error, rejected func(error) bool)
	ObserveTotal(total float64)
}
