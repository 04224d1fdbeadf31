package wall

import "fmt"

// Handle panics with a formatted description when err is non-nil. Meant
// for mains where there is nothing left to unwind.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
