package schema

// columns are kept in the order persistence/v1/note scans them
const schema = `CREATE TABLE notes (
	id BIGINT PRIMARY KEY AUTO_INCREMENT,
	title TEXT,
	content TEXT,
	completed BOOLEAN,
	userId TEXT,
	updatedAt TIMESTAMP,
	createdAt TIMESTAMP
)`

const dropSchema = `DROP TABLE notes`
