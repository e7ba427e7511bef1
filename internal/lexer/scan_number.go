package lexer

import (
	"iomode/internal/token"
)

// scanNumber сканирует числовой литерал: десятичный, "0x..." шестнадцатеричный,
// дробная часть и экспонента. Валидность значения здесь не проверяется —
// интерпретатору виднее.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// hex: 0x / 0X
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.NumberLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть: '.' и хотя бы одна цифра ('..' — оператор, не трогаем)
	if lx.isNumberAfterDot() {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// экспонента: e / E, опциональный знак, цифры
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		} else {
			// "1e" без цифр — откат, 'e' достанется следующему токену
			lx.cursor.Reset(mark)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
