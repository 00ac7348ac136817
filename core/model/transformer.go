package model

import "gonum.org/v1/gonum/mat"

// TransactionTransformer はトランザクションデータ変換のインターフェース
type TransactionTransformer interface {
	// Fit は変換に必要なアイテム集合を学習する
	Fit(transactions [][]string) error

	// Transform はトランザクションをワンホット行列に変換する
	Transform(transactions [][]string) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(transactions [][]string) (mat.Matrix, error)
}
