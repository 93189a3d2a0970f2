package db

const cashCardGetByIDAndOwner = `
SELECT id, amount, owner
FROM cash_card
WHERE id = $1 AND owner = $2
`

const cashCardExistsByIDAndOwner = `
SELECT EXISTS(
	SELECT 1 FROM cash_card WHERE id = $1 AND owner = $2
)
`

const cashCardListByOwner = `
SELECT id, amount, owner
FROM cash_card
WHERE owner = $1
ORDER BY %s
LIMIT $2 OFFSET $3
`

const cashCardCreate = `
INSERT INTO cash_card (amount, owner)
VALUES ($1, $2)
RETURNING id
`

const cashCardUpdate = `
UPDATE cash_card
SET amount = $2, owner = $3
WHERE id = $1
`

const cashCardDelete = `
DELETE FROM cash_card
WHERE id = $1
`
