// Package client provides commands that call a running Destiny API server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/destiny-api/internal/errors"
	"github.com/KirkDiggler/destiny-api/internal/handlers/destiny/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the Destiny API",
	Long:  `Client commands call a running Destiny API server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output the raw response as JSON")

	ClientCmd.AddCommand(classifyCmd)
	ClientCmd.AddCommand(calcIPCmd)
	ClientCmd.AddCommand(setLevelCmd)
	ClientCmd.AddCommand(getProfileCmd)
}

// createClient creates a destiny service client
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// call sends one request and returns the response struct. gRPC failures are
// turned back into coded errors so the message and metadata print cleanly.
func call(method string, req map[string]any) (*structpb.Struct, error) {
	client, cleanup, err := createClient()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	st, err := structpb.NewStruct(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, st)
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return resp, nil
}

func printJSON(resp *structpb.Struct) error {
	marshaler := protojson.MarshalOptions{
		Indent:          "  ",
		EmitUnpopulated: false,
	}
	jsonBytes, err := marshaler.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
