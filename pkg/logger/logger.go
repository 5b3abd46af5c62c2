package logger

type Field struct {
	Key   string
	Value interface{}
}

func NewField(key string, value interface{}) Field {
	return Field{
		Key:   key,
		Value: value,
	}
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Nop отбрасывает все записи. Возвращается моками With в тестах,
// где содержимое логов не проверяется.
type Nop struct{}

func NewNop() *Nop { return &Nop{} }

func (*Nop) Debug(string, ...Field) {}
func (*Nop) Info(string, ...Field)  {}
func (*Nop) Warn(string, ...Field)  {}
func (*Nop) Error(string, ...Field) {}

func (n *Nop) With(...Field) Logger { return n }
