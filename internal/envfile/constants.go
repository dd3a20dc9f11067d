package envfile

// yamlIndent is the indentation used when writing documents.
const yamlIndent = 2
