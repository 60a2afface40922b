// Command anyof-demo exercises AnyOf containers holding greeters: the README
// sample, the bind/copy/mutate/move scenario, and loading greeters of mixed
// concrete types from a sqlite database.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorf("anyof-demo: %v", err)
		os.Exit(1)
	}
}
