package consts

const (
	// JSON-RPC error codes
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603

	// Protocol methods
	MethodInitialize = "initialize"
	MethodToolsList  = "tools/list"
	MethodToolsCall  = "tools/call"

	// Tool names
	ToolQueryLoans    = "query_loans"
	ToolGetStatistics = "get_statistics"

	// Server descriptor
	ProtocolVersion = "2024-11-05"
	ServerName      = "loan-reconciliation-mcp"
	ServerVersion   = "1.0.0"
)
