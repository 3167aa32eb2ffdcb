package cart

type IdGenerator interface {
	NewId() (string, error)
}
