package interfaces

// IPaymentReferenceRenderer turns an encoded payment reference into a
// scannable image.
type IPaymentReferenceRenderer interface {
	Render(payload string, size int, level string) (png []byte, err error)
}
