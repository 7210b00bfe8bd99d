package repl

import "strings"

// Fixed user-facing text. Scripts drive the prompt by matching these lines,
// so they must not change.
const (
	banner       = "*****Welcome to the shortest path finder!******\n"
	prompt       = "Where do you want to go today? "
	goodbye      = "Goodbye!\n"
	invalid      = "Invalid Command\n"
	pathFound    = "Path Found...\n"
	pathNotFound = "Path Not Found...\n"

	helpText = "Commands:\n" +
		"\tlist - list all cities\n" +
		"\t<city1> <city2> - find the shortest path between two cities\n" +
		"\thelp - print this help message\n" +
		"\texit - exit the program\n" +
		"\tneighbors <city> - list the direct roads from a city\n" +
		"\thops <city1> <city2> - find the route with the fewest legs\n" +
		"\tstats - print network statistics\n" +
		"\trender <file.html> - draw the network and the last route as HTML\n"
)

// separator closes the welcome block.
var separator = strings.Repeat("*", 55) + "\n"
