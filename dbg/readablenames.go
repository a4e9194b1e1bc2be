package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into random readable names. It leaks memory but
// generates the names lazily, so it's not a problem unless you're actually
// using it. This is helpful for telling stroke runs apart in a debug log
// without printing their samples.

var (
	memoLock sync.Mutex
	memo     = make(map[interface{}]string)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the name for key, making one up the first time. Keys must be
// comparable.
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	memoLock.Lock()
	defer memoLock.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := RunName()
	memo[key] = r
	return r
}

// RunName makes up a fresh name that isn't remembered.
func RunName() string {
	return fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
