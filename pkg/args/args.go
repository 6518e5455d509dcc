package args

// LogLevel is the verbosity setting handed to the server runner.
type LogLevel string

const (
	Info  LogLevel = "info"
	Debug LogLevel = "debug"
)

// debugFlags switch the level to debug. They take no value; any other
// token on the command line is ignored.
var debugFlags = map[string]bool{
	"-d":        true,
	"--debug":   true,
	"-v":        true,
	"--verbose": true,
}

// Scan walks the argument list left to right and returns the resulting
// log level. Unknown flags and positional arguments are discarded
// without error or output. Once a debug flag is seen the level stays
// debug, no matter what follows.
func Scan(arguments []string) LogLevel {
	level := Info
	for _, argument := range arguments {
		if debugFlags[argument] {
			level = Debug
		}
	}
	return level
}
