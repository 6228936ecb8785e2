// Package cli implements the warehouse command-line driver on top of
// spf13/cobra.
//
// The driver is thin: every command parses its arguments, calls exactly one
// service operation and prints the outcome. Configuration is loaded once per
// invocation from defaults, the optional JSON file, the environment and the
// persistent flags registered by [config.RegisterFlags]; the resulting
// dependencies are built by a caller-supplied [Bootstrap] so that commands
// can be tested against mocks.
//
// Command tree:
//
//	warehouse user register <username> [--password]
//	warehouse user validate <username> [--password]
//	warehouse item upsert <sku> <description> <quantity>
//	warehouse item delete <sku>
//	warehouse item list [--json]
//	warehouse item search <query> [--json]
//	warehouse item watch [query]
//	warehouse migrate [--from N] [--to M]
//	warehouse version
package cli
