package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "finanzas-cli",
		Short: "Finanzas CLI tool",
		Long:  `A command line interface for interacting with the Finanzas API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Finanzas API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountsCmd())
	rootCmd.AddCommand(txCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(demoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			var result struct {
				Accounts []struct {
					ID             string `json:"id"`
					Name           string `json:"name"`
					BalanceDisplay string `json:"balance_display"`
				} `json:"accounts"`
			}
			getJSON("/api/v1/accounts/", nil, &result)
			for _, a := range result.Accounts {
				fmt.Printf("%s  %-30s %s\n", a.ID, a.Name, a.BalanceDisplay)
			}
		},
	})

	var name, balance string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Run: func(cmd *cobra.Command, args []string) {
			var result map[string]any
			postJSON("/api/v1/accounts/", map[string]any{
				"name":    name,
				"balance": json.RawMessage(balanceOrZero(balance)),
			}, &result)
			fmt.Printf("Created account %s\n", result["id"])
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Account name")
	createCmd.Flags().StringVar(&balance, "balance", "0", "Initial balance")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account without transactions",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodDelete, "/api/v1/accounts/"+args[0], nil, nil)
			fmt.Println("Deleted")
		},
	})

	return cmd
}

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}

	var txType, account, date, amount, category, notes string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Run: func(cmd *cobra.Command, args []string) {
			var result map[string]any
			postJSON("/api/v1/transactions/", map[string]any{
				"type":       txType,
				"account_id": account,
				"date":       date,
				"amount":     json.RawMessage(balanceOrZero(amount)),
				"category":   category,
				"notes":      notes,
			}, &result)
			fmt.Printf("Created transaction %s\n", result["id"])
		},
	}
	addCmd.Flags().StringVar(&txType, "type", "ingreso", "Transaction type (ingreso or gasto)")
	addCmd.Flags().StringVar(&account, "account", "", "Account ID")
	addCmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "Date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&amount, "amount", "", "Amount")
	addCmd.Flags().StringVar(&category, "category", "", "Category")
	addCmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.AddCommand(addCmd)

	var month, filterType, filterAccount, search string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List filtered transactions",
		Run: func(cmd *cobra.Command, args []string) {
			var result struct {
				Transactions []struct {
					ID            string `json:"id"`
					Date          string `json:"date"`
					AccountName   string `json:"account_name"`
					Category      string `json:"category"`
					AmountDisplay string `json:"amount_display"`
				} `json:"transactions"`
			}
			getJSON("/api/v1/transactions/", filterQuery(month, filterType, filterAccount, search), &result)
			for _, t := range result.Transactions {
				fmt.Printf("%s  %s  %-20s %-20s %s\n", t.ID, t.Date, t.AccountName, t.Category, t.AmountDisplay)
			}
		},
	}
	listCmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM, default: current)")
	listCmd.Flags().StringVar(&filterType, "type", "all", "Type filter (all, income, expense)")
	listCmd.Flags().StringVar(&filterAccount, "account", "", "Account ID filter")
	listCmd.Flags().StringVar(&search, "search", "", "Search text")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodDelete, "/api/v1/transactions/"+args[0], nil, nil)
			fmt.Println("Deleted")
		},
	})

	return cmd
}

func summaryCmd() *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the monthly summary",
		Run: func(cmd *cobra.Command, args []string) {
			var result struct {
				IncomeDisplay   string `json:"income_display"`
				ExpenseDisplay  string `json:"expense_display"`
				NetDisplay      string `json:"net_display"`
				NetWorthDisplay string `json:"net_worth_display"`
			}
			query := url.Values{}
			if month != "" {
				query.Set("month", month)
			}
			getJSON("/api/v1/summary", query, &result)
			fmt.Printf("Ingresos:    %s\n", result.IncomeDisplay)
			fmt.Printf("Gastos:      %s\n", result.ExpenseDisplay)
			fmt.Printf("Balance:     %s\n", result.NetDisplay)
			fmt.Printf("Patrimonio:  %s\n", result.NetWorthDisplay)
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM, default: current)")
	return cmd
}

func exportCmd() *cobra.Command {
	var month, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered report as HTML",
		Run: func(cmd *cobra.Command, args []string) {
			query := url.Values{}
			if month != "" {
				query.Set("month", month)
			}
			body := doRequest(http.MethodGet, "/api/v1/export", query, nil)
			if out == "" {
				out = "Finanzas_" + time.Now().Format("2006_01") + ".xls"
			}
			if err := os.WriteFile(out, body, 0o644); err != nil {
				fmt.Printf("Error writing report: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Exported to %s\n", out)
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM, default: current)")
	cmd.Flags().StringVar(&out, "out", "", "Output file")
	return cmd
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replace the current state with demo data",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/demo", nil, nil)
			fmt.Println("Demo data seeded")
		},
	}
}

func filterQuery(month, filterType, account, search string) url.Values {
	query := url.Values{}
	if month != "" {
		query.Set("month", month)
	}
	if filterType != "" {
		query.Set("type", filterType)
	}
	if account != "" {
		query.Set("account_id", account)
	}
	if search != "" {
		query.Set("q", search)
	}
	return query
}

func balanceOrZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

func doRequest(method, path string, query url.Values, payload any) []byte {
	client := &http.Client{Timeout: timeout}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Error encoding request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	target := baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(data))
		os.Exit(1)
	}
	return data
}

func getJSON(path string, query url.Values, result any) {
	data := doRequest(http.MethodGet, path, query, nil)
	if err := json.Unmarshal(data, result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
}

func postJSON(path string, payload, result any) {
	data := doRequest(http.MethodPost, path, nil, payload)
	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			fmt.Printf("Failed to parse response: %v\n", err)
			os.Exit(1)
		}
	}
}
