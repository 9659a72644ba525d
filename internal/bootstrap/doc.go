// Package bootstrap runs the one-time setup sequence every program in the
// project is expected to call first: project root discovery, secrets
// injection from the .env file, configuration loading, and construction of
// the shared logger. Init is explicit and idempotent; there are no
// import-time side effects, and repeated calls return the Runtime built by
// the first.
package bootstrap
