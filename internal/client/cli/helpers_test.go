package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/routesync/internal/client/iocli"
)

// newTestIO возвращает IO, пишущий в буфер; inputs отдаются по очереди
// на ReadInput и ReadSecret
func newTestIO(inputs ...string) (*iocli.IOMock, *strings.Builder) {
	out := &strings.Builder{}
	next := func(prompt string) (string, error) {
		out.WriteString(prompt)
		if len(inputs) == 0 {
			return "", fmt.Errorf("unexpected prompt %q", prompt)
		}
		v := inputs[0]
		inputs = inputs[1:]
		return v, nil
	}
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			out.WriteString(fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
		ReadInputFunc:  next,
		ReadSecretFunc: next,
	}, out
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}
