package recorder

// Sealer transforms a password before it is written to the store and
// reverses the transform when it is read back.
type Sealer interface {
	// Seal returns the value to store for the given password.
	Seal(password string) (string, error)

	// Open returns the password for a stored value. Values that were never
	// sealed are returned unchanged.
	Open(stored string) (string, error)
}
