package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mathutils/mcp-calculator/pkg/calculator"
	"github.com/mathutils/mcp-calculator/pkg/logger"
	"github.com/mathutils/mcp-calculator/pkg/types"
)

// MCPCalcServer encapsulates the MCP server with arithmetic functionality
type MCPCalcServer struct {
	server  *server.MCPServer
	version string
}

// NewMCPCalcServer creates a new MCP server exposing the arithmetic tools
func NewMCPCalcServer(version string) *MCPCalcServer {
	s := &MCPCalcServer{
		server:  server.NewMCPServer("Calculator MCP", version),
		version: version,
	}

	// Register all tools
	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *MCPCalcServer) Server() *server.MCPServer {
	return s.server
}

// registerTools registers all arithmetic tools
func (s *MCPCalcServer) registerTools() {
	// Add ping tool
	s.addPingTool()

	// Add arithmetic tools
	s.addAddTool()
	s.addSubtractTool()
	s.addMultiplyTool()
	s.addDivideTool()
}

// addPingTool adds a simple ping tool for health checks
func (s *MCPCalcServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

// addAddTool adds the add tool
func (s *MCPCalcServer) addAddTool() {
	addTool := mcp.NewTool("add",
		mcp.WithDescription("Add two integers and return their sum"),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)

	s.server.AddTool(addTool, s.Add)
}

// addSubtractTool adds the subtract tool
func (s *MCPCalcServer) addSubtractTool() {
	subtractTool := mcp.NewTool("subtract",
		mcp.WithDescription("Subtract the second integer from the first"),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)

	s.server.AddTool(subtractTool, s.Subtract)
}

// addMultiplyTool adds the multiply tool
func (s *MCPCalcServer) addMultiplyTool() {
	multiplyTool := mcp.NewTool("multiply",
		mcp.WithDescription("Multiply two integers and return their product"),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)

	s.server.AddTool(multiplyTool, s.Multiply)
}

// addDivideTool adds the divide tool
func (s *MCPCalcServer) addDivideTool() {
	divideTool := mcp.NewTool("divide",
		mcp.WithDescription("Divide the first integer by the second, returning a floating-point quotient. A zero divisor yields 0.0 rather than an error"),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("Dividend"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Divisor"),
		),
	)

	s.server.AddTool(divideTool, s.Divide)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *MCPCalcServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText("pong - MCP Calculator is connected!"), nil
}

// Add handles the add command
func (s *MCPCalcServer) Add(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received add request")

	a := int(request.Params.Arguments["a"].(float64))
	b := int(request.Params.Arguments["b"].(float64))

	sum := calculator.Add(a, b)

	response := types.OperationResponse{
		Status:    "success",
		Operation: "add",
		Operands:  types.Operands{A: a, B: b},
		Result:    sum,
		Summary:   fmt.Sprintf("%d + %d = %d", a, b, sum),
	}

	return newToolResultJSON(response)
}

// Subtract handles the subtract command
func (s *MCPCalcServer) Subtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received subtract request")

	a := int(request.Params.Arguments["a"].(float64))
	b := int(request.Params.Arguments["b"].(float64))

	difference := calculator.Subtract(a, b)

	response := types.OperationResponse{
		Status:    "success",
		Operation: "subtract",
		Operands:  types.Operands{A: a, B: b},
		Result:    difference,
		Summary:   fmt.Sprintf("%d - %d = %d", a, b, difference),
	}

	return newToolResultJSON(response)
}

// Multiply handles the multiply command
func (s *MCPCalcServer) Multiply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received multiply request")

	a := int(request.Params.Arguments["a"].(float64))
	b := int(request.Params.Arguments["b"].(float64))

	product := calculator.Multiply(a, b)

	response := types.OperationResponse{
		Status:    "success",
		Operation: "multiply",
		Operands:  types.Operands{A: a, B: b},
		Result:    product,
		Summary:   fmt.Sprintf("%d * %d = %d", a, b, product),
	}

	return newToolResultJSON(response)
}

// Divide handles the divide command. A zero divisor is not an error: the
// response is a success carrying exactly 0.0.
func (s *MCPCalcServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received divide request")

	a := int(request.Params.Arguments["a"].(float64))
	b := int(request.Params.Arguments["b"].(float64))

	quotient := calculator.Divide(a, b)

	response := types.DivisionResponse{
		Status:    "success",
		Operation: "divide",
		Operands:  types.Operands{A: a, B: b},
		Result:    quotient,
	}

	if b == 0 {
		response.ZeroDivisor = true
		response.Summary = fmt.Sprintf("%d / 0 yields the fallback value 0.0", a)
		logger.Debug("Zero divisor, returning fallback", "a", a)
	} else {
		response.Summary = fmt.Sprintf("%d / %d = %v", a, b, quotient)
	}

	return newToolResultJSON(response)
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
