package entity

// Identity es el caller resuelto de una operación. No se persiste: lo entrega
// el autenticador por petición y el motor de inventario lo recibe como
// argumento explícito en cada operación (sin contexto implícito).
type Identity struct {
	ID       string
	IsActive bool
	IsAdmin  bool
}
