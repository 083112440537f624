package erltok

// Version is the library version reported by the erltok CLI.
const Version = "0.2.0"
