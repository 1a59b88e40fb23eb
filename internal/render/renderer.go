package render

// Converter turns a markdown body into an HTML fragment.
type Converter interface {
	Convert(src string) (string, error)
}

// ConverterFunc adapts a plain function to Converter.
type ConverterFunc func(src string) (string, error)

func (f ConverterFunc) Convert(src string) (string, error) {
	return f(src)
}
