package version

// Version is the release tag stamped into --version output and run reports.
const Version = "0.2.1"
