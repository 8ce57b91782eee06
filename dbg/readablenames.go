package dbg

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Scene objects don't have to be named. When a report needs to mention one
// that isn't, it gets a readable made-up name instead of a pointer value. The
// name is stable for the lifetime of the process, and never reused.

var (
	mu    sync.Mutex
	memo  = map[interface{}]string{}
	taken = map[string]struct{}{}
)

// After this many collisions, names get a numeric suffix
const maxRetries = 20

var generate = func() string {
	return strings.Title(petname.Adjective()) + strings.Title(petname.Name())
}

func init() {
	// The same object gets a different name on every run, which is a reminder
	// that these names mean nothing outside the process.
	petname.NonDeterministicMode()
}

// Name returns the memoized name for obj, which must be a pointer.
func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return "Ø"
	}
	if v.Kind() != reflect.Ptr {
		return fmt.Sprintf("%v", obj)
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	var r string
	for i := 0; ; i++ {
		r = generate()
		if i >= maxRetries {
			// Generated names have no digits, so this can't clash with one
			r += strconv.Itoa(len(taken))
		}
		if _, ok := taken[r]; !ok {
			break
		}
	}
	memo[obj] = r
	taken[r] = struct{}{}
	return r
}
