// Package flag provides viper-backed accessors for command line flags.
package flag

import (
	"github.com/spf13/viper"
)

// Verbose returns the count of the --verbose flag.
func Verbose() int {
	return viper.GetInt("verbose")
}

// Quiet returns the count of the --quiet flag.
func Quiet() int {
	return viper.GetInt("quiet")
}

// DryRun returns true when running in dryrun mode.
func DryRun() bool {
	return viper.GetBool("dryrun")
}

// PoDir returns the directory holding the po catalogs, relative to the
// project root.
func PoDir() string {
	return viper.GetString("po-dir")
}

// TableFile returns the path of the translation table file, or an empty
// string when the builtin table should be used.
func TableFile() string {
	return viper.GetString("table")
}
