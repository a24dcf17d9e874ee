// Package format re-renders a token sequence as indented C-like source text.
//
// Назначение: восстановить читаемый текст из плоского потока токенов без
// дерева разбора. Структура (блоки, операторы, typedef) угадывается по
// пунктуации; состояние эвристик собрано в State.
// Не делает: лексинг, подстановку, IO.
// Зависимости: internal/token.
package format
