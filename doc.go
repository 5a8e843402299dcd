/*
Package units implements decimal amounts tagged with the unit they are
denominated in, such as token balances in ETH or DAI and prices in USD/DAI.
It relies on the [apd] package for arbitrary-precision decimal arithmetic and
refuses to combine amounts whose units do not fit together.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Arbitrary-precision magnitudes, large enough for rad (10^-45) denominations
  - Arithmetic and comparison operations checked against the units of operands
  - Ratio units derived by division, such as USD / DAI = USD/DAI
  - Conversion of amounts using ratio amounts
  - Truncating fixed-point rendering in wei, ray and rad denominations

# Representation

The package consists of four main types: Unit, Amount, Currency and Registry.
A Unit is either atomic, such as "DAI", or a ratio of two atomic units,
such as "USD/DAI".
An Amount is a pair of a Unit and an [apd.Decimal] magnitude.
An amount denominated in a ratio unit is called a ratio amount; every other
amount is a simple amount.
A Currency is a factory of amounts in a single unit, possibly pre-scaled by
a power of ten, and a Registry resolves symbols to currencies.

# Operations

Add, Sub and comparisons accept a raw [Number] or an amount in the same unit.
Mul accepts a raw number, an amount in the same unit, or a ratio amount
whose denominator is the unit of the left operand:

	20 DAI * 4 USD/DAI = 80 USD

Quo additionally accepts an amount in a different atomic unit, which yields a
ratio amount, or a ratio amount whose numerator is the unit of the left operand:

	4 USD / 20 DAI = 0.2 USD/DAI
	20 USD / 4 USD/DAI = 5 DAI

Every operation is also available by name through [Amount.Apply] and
[Amount.Is], which accept synonyms such as "plus", "times" or "lt".

# Rounding

Addition, subtraction and multiplication are exact.
Division keeps 100 significant digits and rounds half to even.
The quotient of a non-zero amount and zero is an infinite amount.
Amounts are rounded half away from zero for display by [Amount.String] and
truncated toward zero by [Amount.FixedString], so that a fixed-point string
never represents more value than the amount.

# Errors

Errors may occur during construction of Unit and Amount values, when an
operation combines incompatible units, and when a symbol cannot be resolved
by a Registry.
Every error wraps one of the sentinel errors of the package and can be
checked with [errors.Is].
The Must constructors panic instead of returning an error.
*/
package units
