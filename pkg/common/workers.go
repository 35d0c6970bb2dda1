package common

// WorkerCount is the number of concurrent workers batch-style commands
// should use, parsed from the root command's --workers flag. Defaults to 1
// until the root command's PersistentPreRunE sets it.
var WorkerCount = 1
