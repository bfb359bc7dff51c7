package helpers

import (
	"os"
	"strings"
)

// UnsetProjectRunEnv removes every PROJECT_RUN* variable inherited from the surrounding environment.
func UnsetProjectRunEnv() {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PROJECT_RUN") {
			pair := strings.SplitN(env, "=", 2)
			os.Unsetenv(pair[0])
		}
	}
}
