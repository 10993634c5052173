package pricing

import "errors"

// エラーの種類は errors.Is で判別できるように番兵（sentinel）として定義します。
// ディスパッチ層はこれらを握りつぶさず、そのまま呼び出し元へ流します。
var (
	// ErrInvalidInput は戦略が受け付けられない入力（マイナス金額など）を受け取ったことを示します
	ErrInvalidInput = errors.New("不正な入力値です")

	// ErrNotFound は指定されたキーの戦略がレジストリに登録されていないことを示します。
	// 勝手にデフォルト戦略へフォールバックすると設定ミスが隠れてしまうため、必ずエラーにします。
	ErrNotFound = errors.New("戦略が見つかりません")

	// ErrNilStrategy は戦略の束縛なしでディスパッチャーを組み立てようとした設定ミスです
	ErrNilStrategy = errors.New("戦略が束縛されていません")
)
