package iocli

//go:generate moq -out io_mock.go . IO

// IO терминальный ввод-вывод CLI; подменяется в тестах команд.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	// ReadSecret читает значение без эха, если ввод является терминалом
	ReadSecret(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
