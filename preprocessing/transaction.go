package preprocessing

import (
	"fmt"
	"sort"

	"github.com/YuminosukeSato/gomine/core/model"
	"github.com/YuminosukeSato/gomine/core/parallel"
	"github.com/YuminosukeSato/gomine/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// parallelThreshold はTransformを並列化する行数の閾値
const parallelThreshold = 1000

// TransactionEncoder はmlxtend互換のトランザクションエンコーダー
// トランザクションの集合をワンホット行列（n_transactions × n_items）に変換する
type TransactionEncoder struct {
	model.BaseEstimator

	// Columns は学習されたアイテム全体集合（昇順ソート済み）
	Columns []string

	// index はアイテム名から列番号への逆引き
	index map[string]int
}

// NewTransactionEncoder は新しいTransactionEncoderを作成する
//
// 使用例:
//
//	encoder := preprocessing.NewTransactionEncoder()
//	err := encoder.Fit(transactions)
//	X, err := encoder.Transform(transactions)
func NewTransactionEncoder() *TransactionEncoder {
	return &TransactionEncoder{}
}

// Fit は訓練データからアイテム全体集合を学習する
//
// パラメータ:
//   - transactions: トランザクションの集合（各トランザクションはアイテムの列）
//
// 戻り値:
//   - error: エラーが発生した場合
func (e *TransactionEncoder) Fit(transactions [][]string) error {
	if len(transactions) == 0 {
		return errors.NewModelError("TransactionEncoder.Fit", "empty data", errors.ErrEmptyData)
	}

	// アイテム全体集合を収集（トランザクション内の重複は自然に潰れる）
	universe := make(map[string]struct{})
	for _, transaction := range transactions {
		for _, item := range transaction {
			universe[item] = struct{}{}
		}
	}

	e.Columns = make([]string, 0, len(universe))
	for item := range universe {
		e.Columns = append(e.Columns, item)
	}
	sort.Strings(e.Columns)

	e.index = make(map[string]int, len(e.Columns))
	for j, item := range e.Columns {
		e.index[item] = j
	}

	e.SetFitted()
	return nil
}

// Transform は学習済みのアイテム集合を使ってトランザクションをワンホット行列に変換する
// 学習時に存在しなかったアイテムはUnknownItemWarningを発行した上で無視される
//
// パラメータ:
//   - transactions: 変換するトランザクションの集合
//
// 戻り値:
//   - mat.Matrix: ワンホット行列（n_transactions × n_items）
//   - error: エラーが発生した場合
func (e *TransactionEncoder) Transform(transactions [][]string) (mat.Matrix, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("TransactionEncoder", "Transform")
	}
	if len(transactions) == 0 {
		return nil, errors.NewModelError("TransactionEncoder.Transform", "empty data", errors.ErrEmptyData)
	}

	result := mat.NewDense(len(transactions), len(e.Columns), nil)

	// 各行は独立なので行単位で並列化できる
	parallel.ParallelizeWithThreshold(len(transactions), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for _, item := range transactions[i] {
				j, ok := e.index[item]
				if !ok {
					errors.Warn(errors.NewUnknownItemWarning("TransactionEncoder.Transform", item))
					continue
				}
				result.Set(i, j, 1)
			}
		}
	})

	return result, nil
}

// FitTransform は訓練データで学習し、同じデータを変換する
//
// パラメータ:
//   - transactions: 訓練・変換するトランザクションの集合
//
// 戻り値:
//   - mat.Matrix: ワンホット行列
//   - error: エラーが発生した場合
func (e *TransactionEncoder) FitTransform(transactions [][]string) (mat.Matrix, error) {
	if err := e.Fit(transactions); err != nil {
		return nil, err
	}
	return e.Transform(transactions)
}

// InverseTransform はワンホット行列をトランザクションの集合に戻す
// 返されるトランザクションは正準形（アイテム昇順・重複なし）になる
//
// パラメータ:
//   - X: ワンホット行列（非ゼロ要素がアイテムの存在を表す）
//
// 戻り値:
//   - [][]string: トランザクションの集合
//   - error: エラーが発生した場合
func (e *TransactionEncoder) InverseTransform(X mat.Matrix) ([][]string, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("TransactionEncoder", "InverseTransform")
	}

	r, c := X.Dims()
	if c != len(e.Columns) {
		return nil, errors.NewDimensionError("TransactionEncoder.InverseTransform", len(e.Columns), c, 1)
	}

	transactions := make([][]string, r)
	for i := 0; i < r; i++ {
		var transaction []string
		for j := 0; j < c; j++ {
			if X.At(i, j) != 0 {
				transaction = append(transaction, e.Columns[j])
			}
		}
		transactions[i] = transaction
	}

	return transactions, nil
}

// GetParams はエンコーダーのパラメータを取得する
func (e *TransactionEncoder) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"columns": e.Columns,
	}
}

// String はエンコーダーの文字列表現を返す
func (e *TransactionEncoder) String() string {
	if !e.IsFitted() {
		return "TransactionEncoder()"
	}
	return fmt.Sprintf("TransactionEncoder(n_items=%d)", len(e.Columns))
}
