package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/plannow/pkg/commands/options"
	"tableflip.dev/plannow/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport   string
		httpHost    string
		httpPort    int
		httpPath    string
		httpTLSCert string
		httpTLSKey  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the Model Context Protocol server.",
		Long: options.Wrap80(`Launch an MCP server that exposes the signed-in user's journal: tools to
create, list, edit, toggle and delete entries, and resources for days, hashtags
and single entries. Sign in first, the server acts as that user.`),
		Example: `
plannow mcp
plannow mcp --transport http --http-port 8080
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = e.Close() }()

			path := strings.TrimSpace(httpPath)
			if path == "" {
				path = "/mcp"
			}
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			runner := mcp.Runner{
				Service:          e.Service,
				Name:             "plannow",
				Version:          version,
				HTTPEndpointPath: path,
				HTTPServerCert:   strings.TrimSpace(httpTLSCert),
				HTTPServerKey:    strings.TrimSpace(httpTLSKey),
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			case string(mcp.TransportHTTP):
				host := strings.TrimSpace(httpHost)
				if host == "" {
					host = "127.0.0.1"
				}
				if httpPort < 0 || httpPort > 65535 {
					return oo.HandleError(fmt.Errorf("invalid http-port %d", httpPort))
				}
				addr := net.JoinHostPort(host, strconv.Itoa(httpPort))
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = addr
				runner.OnHTTPListening = func(a net.Addr) {
					scheme := "http"
					if runner.HTTPServerCert != "" && runner.HTTPServerKey != "" {
						scheme = "https"
					}
					tcpAddr, ok := a.(*net.TCPAddr)
					if !ok {
						_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s://%s%s\n", scheme, addr, path)
						return
					}
					display := host
					if display == "0.0.0.0" || display == "::" {
						display = "127.0.0.1"
					}
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s://%s%s\n",
						scheme, net.JoinHostPort(display, strconv.Itoa(tcpAddr.Port)), path)
				}
			default:
				return oo.HandleError(fmt.Errorf("unsupported transport %q (expected stdio or http)", transport))
			}

			return oo.HandleError(runner.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio), "Transport to use: stdio or http.")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "Host/interface for the http transport.")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "Port for the http transport, 0 picks a free one.")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path.")
	cmd.Flags().StringVar(&httpTLSCert, "http-tls-cert", "", "TLS certificate file for https.")
	cmd.Flags().StringVar(&httpTLSKey, "http-tls-key", "", "TLS private key file for https.")

	topLevel.AddCommand(cmd)
}
