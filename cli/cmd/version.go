package cmd

// Version is reported by the -V flag.
const Version = "1.0.0"
