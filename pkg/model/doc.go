// Package model は共通データ構造体を提供する。
// いずれもディレクトリ（Valkey / 上流API）に保存されるレコードの形を表す。
package model
