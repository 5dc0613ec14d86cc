package tiddlylisp

// Version is the interpreter release reported by the command line tool.
const Version = "0.1.0"
