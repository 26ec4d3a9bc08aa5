// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the validation run that checks every
// declared path argument, decoupled from any specific entrypoint like a CLI.
package app
