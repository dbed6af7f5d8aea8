// Package pattern selects the regular expression used to locate a version
// string in a file. An explicit override always wins; otherwise user-configured
// suffix rules and then the built-in defaults (.csproj, package.json) are
// consulted by file name.
package pattern
