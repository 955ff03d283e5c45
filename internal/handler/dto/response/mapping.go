package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// mustCopy maps a read model onto a response struct with matching field names.
// A failure means the two types drifted apart; CustomRecovery renders it as a 500.
func mustCopy[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic(fmt.Sprintf("response mapping %T -> %T: %v", src, dst, err))
	}
	return &dst
}

func mustCopyAll[T any, S any](src []S) []*T {
	out := make([]*T, len(src))
	for i, s := range src {
		out[i] = mustCopy[T](s)
	}
	return out
}
