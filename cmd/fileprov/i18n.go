// Package main provides localization for the fileprov CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Manage a file-backed resource from a JSON request on stdin": "標準入力のJSONリクエストからファイルリソースを管理",

		// Flags
		"Action to perform (create, read, update, delete)": "実行するアクション（create, read, update, delete）",
		"Log level (debug, info, warn, error)":             "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                          "全てのログ出力を抑制",

		// Handler messages
		"Handling %s for %q":         "%s を %q に対して処理中",
		"Created %s (%d bytes)":      "%s を作成しました（%d バイト）",
		"Updated %s (%d bytes)":      "%s を更新しました（%d バイト）",
		"Deleted %s":                 "%s を削除しました",
		"Resource %s does not exist": "リソース %s は存在しません",
		"Resource %s already gone":   "リソース %s は既に存在しません",
		"%s failed: %s":              "%s が失敗しました: %s",
	})
}
