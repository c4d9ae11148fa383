package srapi

// Version is the library version catalog files are checked against.
const Version = "0.1.0"
